package middleware

// MetricsCollector метрики HTTP запросов
type MetricsCollector interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// CredentialChecker проверка учетных данных администратора
type CredentialChecker interface {
	CheckCredentials(username, password string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
