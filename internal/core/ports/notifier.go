package ports

import (
	"logistics/internal/core/domain/model/toast"
)

// Notifier reports outcomes to the user.
type Notifier interface {
	Notify(kind toast.Kind, message string) toast.Toast
}
