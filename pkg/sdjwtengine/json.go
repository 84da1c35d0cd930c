package sdjwtengine

import "encoding/json"

func marshalCompact(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalCompact(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}
