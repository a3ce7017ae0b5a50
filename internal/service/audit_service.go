package service

import (
	"context"

	"cadcam-storefront/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Audit actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// AuditService records who changed which catalog entity. Entries go to the
// application log; there is no audit table.
type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{
		log: log,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID string, newValue interface{}) {
	s.record(ctx, ActionCreate, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID string, oldValue, newValue interface{}) {
	s.record(ctx, ActionUpdate, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID string, oldValue interface{}) {
	s.record(ctx, ActionDelete, entityName, entityID, oldValue, nil)
}

func (s *auditService) record(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) {
	principal := "system"
	if p, ok := entity.PrincipalFromContext(ctx); ok {
		principal = p.Name
	}

	s.log.WithFields(logrus.Fields{
		"audit":     true,
		"principal": principal,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}).Info("Catalog changed")
}
