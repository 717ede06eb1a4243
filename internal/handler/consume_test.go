package handler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/handler"
	"github.com/sajilorent/rental-service/internal/model"
)

// The group loop re-enters Consume with the same handler after every
// rebalance, so sarama calls Setup once per session on one Consumer.
func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()

	consumer := handler.NewConsumer(func(ctx context.Context, event model.SellerEvent) error {
		return nil
	}, zap.NewNop())

	for i := 0; i < 3; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, consumer.Setup(nil))
			require.NoError(t, consumer.Cleanup(nil))
		})
	}
}
