package logger

import "strings"

// appendKV writes " key=value" to b
func appendKV(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}
