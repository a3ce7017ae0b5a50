package service

import (
	"context"
	"testing"

	"cadcam-storefront/internal/domain/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordsPrincipal(t *testing.T) {
	log, hook := test.NewNullLogger()
	audit := NewAuditService(log)

	ctx := entity.WithPrincipal(context.Background(), entity.Principal{Name: "ops@cadcam.shop", Role: entity.RoleAdmin})
	audit.LogUpdate(ctx, "product", "p1", map[string]int{"quantity": 3}, map[string]int{"quantity": 0})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "ops@cadcam.shop", entry.Data["principal"])
	assert.Equal(t, ActionUpdate, entry.Data["action"])
	assert.Equal(t, "p1", entry.Data["entity_id"])
	assert.Equal(t, map[string]int{"quantity": 3}, entry.Data["old_value"])
}

func TestAuditService_WithoutPrincipal(t *testing.T) {
	log, hook := test.NewNullLogger()
	audit := NewAuditService(log)

	audit.LogDelete(context.Background(), "product", "p2", "old")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "system", entry.Data["principal"])
	assert.Nil(t, entry.Data["new_value"])
}
