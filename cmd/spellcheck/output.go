package main

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// formatCorrections 補正マップを1行のJSONオブジェクトにする。
// キーはソートし、区切りは ": " と ", "。非ASCII文字とHTML文字はエスケープしない。
func formatCorrections(corrections map[string]string) (string, error) {
	keys := make([]string, 0, len(corrections))
	for k := range corrections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		key, err := encodeString(k)
		if err != nil {
			return "", err
		}
		value, err := encodeString(corrections[k])
		if err != nil {
			return "", err
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func encodeString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
