package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const emissorToken = "painel-vendedores"

var ErrSegredoCurto = errors.New("segredo da sessão precisa de pelo menos 32 bytes")

// Claims do cookie de sessão. O painel não autentica ninguém: o token só
// amarra o navegador ao estado do painel guardado no servidor.
type Claims struct {
	SessaoID string `json:"sid"`
	jwt.RegisteredClaims
}

type Emissor struct {
	segredo []byte
	ttl     time.Duration
}

// NovoEmissor usa o segredo informado ou gera um aleatório, válido até o
// processo reiniciar.
func NovoEmissor(segredo string, ttl time.Duration) (*Emissor, error) {
	if segredo == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("gerar segredo: %w", err)
		}
		segredo = hex.EncodeToString(b)
	}
	if len(segredo) < 32 {
		return nil, ErrSegredoCurto
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Emissor{segredo: []byte(segredo), ttl: ttl}, nil
}

func (e *Emissor) TTL() time.Duration {
	return e.ttl
}

// GerarToken assina um JWT HS256 com o id da sessão
func (e *Emissor) GerarToken(sessaoID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessaoID: sessaoID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    emissorToken,
			Subject:   sessaoID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.segredo)
}

// ValidarToken valida assinatura, emissor e expiração
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(emissorToken),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return e.segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessaoID == "" {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
