package leave

import (
	"errors"
	"strings"

	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_audit_event" {
			return leaveerrors.ErrDuplicateAuditEvent
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_audit_event") {
		return leaveerrors.ErrDuplicateAuditEvent
	}

	return err
}
