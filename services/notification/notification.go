package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// StatusMessageBuilder dựng thông báo khi booking hoặc đơn cá đổi trạng thái,
// dashboard nhân viên nghe qua websocket để tự làm mới
type StatusMessageBuilder struct {
	entity string
	id     string
	from   string
	to     string
}

func NewStatusMessageBuilder(entity, id, from, to string) *StatusMessageBuilder {
	return &StatusMessageBuilder{
		entity: entity,
		id:     id,
		from:   from,
		to:     to,
	}
}

func (b *StatusMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 %s %s: %s -> %s", b.entity, b.id, b.from, b.to)
}
