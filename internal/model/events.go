package model

import "time"

const TopicAccountDeleted = "account.deleted"

// AccountDeleted is published once an identity has been removed.
type AccountDeleted struct {
	UserID    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}
