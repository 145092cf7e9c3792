package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft is capacity minus the current roster size. It goes negative when
// the roster is over capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}

	return false
}

// Activities is an ordered set of activities. On the wire it is a JSON object
// keyed by activity name; decoding keeps the key order of the document.
type Activities []Activity

func (as Activities) Names() []string {
	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, a.Name)
	}

	return names
}

func (as Activities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, a := range as {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}

		if a.Participants == nil {
			a.Participants = []string{}
		}

		val, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (as *Activities) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities: expected object, got %v", tok)
	}

	out := Activities{}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: expected name, got %v", tok)
		}

		var a Activity
		if err = dec.Decode(&a); err != nil {
			return fmt.Errorf("activities: decode %q: %w", name, err)
		}

		a.Name = name
		out = append(out, a)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}

	*as = out

	return nil
}
