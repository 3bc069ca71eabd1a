package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const CtxSessaoID ctxKey = "sessaoID"

const CookieSessao = "painel_sessao"

// MiddlewareSessao garante um id de sessão em todo request. Cookie ausente,
// adulterado ou expirado gera uma sessão nova.
func MiddlewareSessao(emissor *Emissor, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(CookieSessao); err == nil {
				if claims, err := emissor.ValidarToken(c.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(ComSessao(r.Context(), claims.SessaoID)))
					return
				}
			}

			id := uuid.NewString()
			token, err := emissor.GerarToken(id)
			if err != nil {
				http.Error(w, "erro ao iniciar sessão", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieSessao,
				Value:    token,
				Path:     "/",
				MaxAge:   int(emissor.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(ComSessao(r.Context(), id)))
		})
	}
}

func ComSessao(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxSessaoID, id)
}

func SessaoID(ctx context.Context) string {
	id, _ := ctx.Value(CtxSessaoID).(string)
	return id
}
