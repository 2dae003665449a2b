package postgres

import (
	"errors"
	"strings"

	pgconnv1 "github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды SQLSTATE, которые репозитории переводят в доменные ошибки.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// pgError достаёт код и имя ограничения из ошибки драйвера.
// GORM работает через pgx/v5, мигратор через lib/pq, старый pgconn v1 остаётся у pgx v4.
func pgError(err error) (code, constraint string, ok bool) {
	var v5 *pgconn.PgError
	if errors.As(err, &v5) {
		return v5.Code, v5.ConstraintName, true
	}
	var v1 *pgconnv1.PgError
	if errors.As(err, &v1) {
		return v1.Code, v1.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// isUniqueViolation сообщает о нарушении уникальности. Если заданы имена
// ограничений, подходит только совпадающее.
func isUniqueViolation(err error, constraintNames ...string) bool {
	return matches(err, []string{codeUniqueViolation}, constraintNames)
}

// isConstraintViolation распознаёт нарушение CHECK, NOT NULL или внешнего ключа.
func isConstraintViolation(err error) bool {
	return matches(err, []string{codeCheckViolation, codeNotNullViolation, codeForeignKeyViolation}, nil)
}

func matches(err error, codes, constraintNames []string) bool {
	if err == nil {
		return false
	}

	if code, constraint, ok := pgError(err); ok {
		if !contains(codes, code) {
			return false
		}
		if len(constraintNames) == 0 {
			return true
		}
		for _, name := range constraintNames {
			if strings.EqualFold(constraint, name) {
				return true
			}
		}
		return false
	}

	// Fallback для обёрнутых в текст ошибок: ищем SQLSTATE и имя ограничения в сообщении.
	msg := strings.ToLower(err.Error())
	found := false
	for _, code := range codes {
		if strings.Contains(msg, code) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if len(constraintNames) == 0 {
		return true
	}
	for _, name := range constraintNames {
		if strings.Contains(msg, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
