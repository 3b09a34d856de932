package keyed

import "fmt"

// Status - исход чтения или изменения документа
type Status int

const (
	// StatusOK документ прочитан или записан
	StatusOK Status = iota
	// StatusAbsent документ никогда не записывался, возвращено значение по умолчанию
	StatusAbsent
	// StatusCorrupt документ не разобран как JSON, возвращено значение по умолчанию
	StatusCorrupt
	// StatusUnavailable хранилище недоступно при чтении
	StatusUnavailable
	// StatusWriteFailed запись не удалась, возвращено последнее известное состояние
	StatusWriteFailed
)

var statusNames = map[Status]string{
	StatusOK:          "ok",
	StatusAbsent:      "absent",
	StatusCorrupt:     "corrupt",
	StatusUnavailable: "unavailable",
	StatusWriteFailed: "write_failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for st, name := range statusNames {
		if name == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

// Result - значение и тег исхода. Value всегда пригодно к использованию:
// при сбоях это значение по умолчанию или последнее известное состояние.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// OK сообщает, что значение получено из валидного состояния хранилища
func (r Result[T]) OK() bool {
	return r.Status == StatusOK || r.Status == StatusAbsent
}

// Failed - обратное к OK
func (r Result[T]) Failed() bool {
	return !r.OK()
}
