package service

import (
	"fmt"
	"log"
)

// Stdout — запасной нотификатор без токена: всё в обычный лог.
type Stdout struct{}

func NewStdout() *Stdout { return &Stdout{} }

func (*Stdout) Send(msg string) {
	log.Printf("[NOTIFY] %s", msg)
}

func (s *Stdout) Sendf(format string, args ...any) {
	s.Send(fmt.Sprintf(format, args...))
}
