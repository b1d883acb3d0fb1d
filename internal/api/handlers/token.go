package handlers

import (
	"net/http"
	"strings"
)

// BearerToken извлекает bearer токен из заголовка Authorization.
// Пустая строка - токена нет; шлюз не проверяет токены сам,
// это делает платформа.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
