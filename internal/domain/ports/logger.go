package ports

// Logger é a interface de logging estruturado usada por serviços e
// infraestrutura. Os args são pares chave/valor no estilo slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With retorna um logger com os pares chave/valor anexados a
	// todas as mensagens seguintes
	With(args ...any) Logger
}
