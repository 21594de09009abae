package ports

import "context"

// Logger — минимальный контракт логгера для всех слоёв;
// контекст нужен для request_id/trace_id в сообщениях.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения (в т.ч. деградация кэша).
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
