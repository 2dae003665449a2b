package plan

import "errors"

// Ошибки генерации и сохранения планов. Классы взаимоисключающие:
// каждая ошибка Generate относится ровно к одному из них.
var (
	// ErrTransportFailure — модель не ответила: сеть, авторизация, квота, таймаут.
	ErrTransportFailure = errors.New("completion transport failure")

	// ErrMalformedResponse — ответ модели не является одним JSON-значением.
	ErrMalformedResponse = errors.New("malformed completion response")

	// ErrSchemaViolation — JSON разобран, но не соответствует форме плана.
	// Оборачивает *training.SchemaError.
	ErrSchemaViolation = errors.New("plan document schema violation")

	// ErrConstraintViolation — план нарушает ограничения хранилища (тип, сложность).
	ErrConstraintViolation = errors.New("plan constraint violation")

	// ErrProfileRequired — для генерации нужен заполненный профиль.
	ErrProfileRequired = errors.New("profile required")

	// ErrInvalidDocument — документ упражнений, присланный пользователем, не прошёл проверку.
	ErrInvalidDocument = errors.New("invalid plan document")
)

// Метки классов ошибок для логов и кодов ответа.
const (
	KindTransportFailure    = "transport_failure"
	KindMalformedResponse   = "malformed_response"
	KindSchemaViolation     = "schema_violation"
	KindConstraintViolation = "constraint_violation"
	KindProfileRequired     = "profile_required"
	KindInvalidDocument     = "invalid_document"
	KindInternal            = "internal"
)

// KindOf возвращает метку класса ошибки.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransportFailure):
		return KindTransportFailure
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrSchemaViolation):
		return KindSchemaViolation
	case errors.Is(err, ErrConstraintViolation):
		return KindConstraintViolation
	case errors.Is(err, ErrProfileRequired):
		return KindProfileRequired
	case errors.Is(err, ErrInvalidDocument):
		return KindInvalidDocument
	}
	return KindInternal
}
