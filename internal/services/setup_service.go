package services

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
)

const otpCodesDDL = `
CREATE TABLE IF NOT EXISTS otp_codes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	otp_code VARCHAR(16) NOT NULL,
	expires_at DATETIME NOT NULL,
	is_used TINYINT(1) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	used_at DATETIME NULL,
	KEY idx_otp_codes_email (email),
	KEY idx_otp_codes_otp_code (otp_code),
	KEY idx_otp_codes_expires_at (expires_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// SetupService runs one-time schema actions.
type SetupService struct {
	DB *sql.DB
}

func (s SetupService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// EnsureOTPTable creates otp_codes with its indexes when missing. It reports
// whether the table was created by this call.
func (s SetupService) EnsureOTPTable(ctx context.Context) (bool, error) {
	db := s.db()
	if db == nil {
		return false, domain.Internal(fmt.Errorf("database not connected"))
	}
	if intdb.HasTable(ctx, db, "otp_codes") {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, otpCodesDDL); err != nil {
		return false, domain.Internal(fmt.Errorf("create otp_codes: %w", err))
	}
	return true, nil
}
