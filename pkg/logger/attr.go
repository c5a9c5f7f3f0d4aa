package logger

import (
	"log/slog"

	"github.com/pazarplus/toastkit/pkg/toast"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ToastID records the toast identifier under the key "toast_id".
func ToastID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("toast_id", id)
}

// Variant records the toast severity under the key "variant".
func Variant(v toast.Variant) slog.Attr {
	return slog.String("variant", v.String())
}

// Position records the stack bucket under the key "position".
func Position(p toast.Position) slog.Attr {
	return slog.String("position", p.String())
}
