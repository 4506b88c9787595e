package entity

import "time"

// MaxAuditEntries hard cap on the audit trail; oldest entries are dropped
// in the same transaction that appends a new one.
const MaxAuditEntries = 500

// AuditEntry catatan append-only untuk setiap aksi yang mengubah data.
type AuditEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Action    string    `json:"action" gorm:"size:50;not null"`
	Detail    string    `json:"detail" gorm:"type:text"`
	Username  string    `json:"username" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (AuditEntry) TableName() string {
	return "nj_audit_trail"
}
