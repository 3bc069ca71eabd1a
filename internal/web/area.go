package web

import (
	"context"
	"sync"
)

// filaCopia é a área de transferência do lado do servidor: o texto fica na
// fila até a próxima página renderizada, que o grava no navegador com
// navigator.clipboard.writeText.
type filaCopia struct {
	mu     sync.Mutex
	textos []string
}

func (f *filaCopia) Copiar(_ context.Context, texto string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textos = append(f.textos, texto)
	return nil
}

// Retirar esvazia a fila.
func (f *filaCopia) Retirar() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	textos := f.textos
	f.textos = nil
	return textos
}
