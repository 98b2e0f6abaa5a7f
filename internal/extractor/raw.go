package extractor

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// extractRaw is the last-resort extractor. It works directly on the PDF
// byte stream without parsing the document structure: it locates
// content streams, inflates the compressed ones, and pulls text out of
// the Tj, TJ and ' operators. Layout fidelity is rough but the line
// breaks implied by Td/TD/T* are preserved, which is what the line
// parsers need.
func extractRaw(data []byte) []string {
	streams := extractStreams(data)
	if len(streams) == 0 {
		return nil
	}

	var texts []string
	for _, stream := range streams {
		decompressed := tryDecompress(stream)
		text := extractTextFromStream(decompressed)
		if text != "" {
			texts = append(texts, text)
		}
	}
	return mergeStreamText(texts)
}

// extractStreams finds all stream...endstream blocks in the document.
func extractStreams(data []byte) [][]byte {
	var streams [][]byte
	streamMarker := []byte("stream")
	endMarker := []byte("endstream")

	offset := 0
	for offset < len(data) {
		idx := bytes.Index(data[offset:], streamMarker)
		if idx < 0 {
			break
		}
		start := offset + idx + len(streamMarker)

		// Skip the \r\n or \n that follows the stream keyword
		if start < len(data) && data[start] == '\r' {
			start++
		}
		if start < len(data) && data[start] == '\n' {
			start++
		}

		endIdx := bytes.Index(data[start:], endMarker)
		if endIdx < 0 {
			break
		}

		streamData := data[start : start+endIdx]
		if len(streamData) > 0 {
			streams = append(streams, streamData)
		}
		offset = start + endIdx + len(endMarker)
	}
	return streams
}

// tryDecompress inflates FlateDecode streams, returning the input
// unchanged when it is not zlib data.
func tryDecompress(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return out
}

// PDF text-showing and positioning operators.
var (
	hexTjPattern   = regexp.MustCompile(`<([0-9A-Fa-f]+)>\s*Tj`)
	litTjPattern   = regexp.MustCompile(`\(([^)]*)\)\s*Tj`)
	tjArrayPattern = regexp.MustCompile(`\[([^\]]*)\]\s*TJ`)
	hexInArrayRe   = regexp.MustCompile(`<([0-9A-Fa-f]+)>`)
	litInArrayRe   = regexp.MustCompile(`\(([^)]*)\)`)
	tickPattern    = regexp.MustCompile(`\(([^)]*)\)\s*'`)
	tdPattern      = regexp.MustCompile(`([\d.\-]+)\s+([\d.\-]+)\s+T[dD]`)
)

func extractTextFromStream(data []byte) string {
	content := string(data)

	if !strings.Contains(content, "Tj") && !strings.Contains(content, "TJ") &&
		!strings.Contains(content, "BT") {
		return ""
	}

	var lines []string
	for _, block := range splitBTBlocks(content) {
		lines = append(lines, processTextBlock(block)...)
	}

	// No BT...ET structure, collect operators globally
	if len(lines) == 0 {
		text := extractAllText(content)
		if text != "" {
			lines = append(lines, text)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// splitBTBlocks returns the content between each BT and ET pair.
func splitBTBlocks(content string) []string {
	var blocks []string
	remaining := content
	for {
		btIdx := strings.Index(remaining, "BT")
		if btIdx < 0 {
			break
		}
		etIdx := strings.Index(remaining[btIdx:], "ET")
		if etIdx < 0 {
			break
		}
		blocks = append(blocks, remaining[btIdx:btIdx+etIdx+2])
		remaining = remaining[btIdx+etIdx+2:]
	}
	return blocks
}

// processTextBlock walks a BT...ET block operator by operator. Td, TD
// and T* mark line boundaries; Tj, TJ and ' contribute text.
func processTextBlock(block string) []string {
	var lines []string
	var currentLine strings.Builder

	flush := func() {
		if currentLine.Len() > 0 {
			line := strings.TrimSpace(currentLine.String())
			if line != "" {
				lines = append(lines, line)
			}
			currentLine.Reset()
		}
	}

	for _, op := range strings.Split(block, "\n") {
		op = strings.TrimSpace(op)

		if tdPattern.MatchString(op) || op == "T*" {
			flush()
		}

		for _, m := range hexTjPattern.FindAllStringSubmatch(op, -1) {
			currentLine.WriteString(decodeHexString(m[1]))
		}
		for _, m := range litTjPattern.FindAllStringSubmatch(op, -1) {
			currentLine.WriteString(decodeLiteralString(m[1]))
		}
		for _, m := range tjArrayPattern.FindAllStringSubmatch(op, -1) {
			currentLine.WriteString(decodeTJArray(m[1]))
		}
		for _, m := range tickPattern.FindAllStringSubmatch(op, -1) {
			flush()
			currentLine.WriteString(decodeLiteralString(m[1]))
		}
	}

	flush()
	return lines
}

func extractAllText(content string) string {
	var parts []string

	for _, m := range hexTjPattern.FindAllStringSubmatch(content, -1) {
		if text := decodeHexString(m[1]); text != "" {
			parts = append(parts, text)
		}
	}
	for _, m := range litTjPattern.FindAllStringSubmatch(content, -1) {
		if text := decodeLiteralString(m[1]); text != "" {
			parts = append(parts, text)
		}
	}
	for _, m := range tjArrayPattern.FindAllStringSubmatch(content, -1) {
		if text := decodeTJArray(m[1]); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

// decodeHexString decodes a hex PDF string, first as UTF-16BE, then as
// plain bytes.
func decodeHexString(hexStr string) string {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return ""
	}

	if len(raw)%2 == 0 && len(raw) >= 2 {
		var result strings.Builder
		for i := 0; i+1 < len(raw); i += 2 {
			cp := rune(raw[i])<<8 | rune(raw[i+1])
			if unicode.IsPrint(cp) || cp == ' ' {
				result.WriteRune(cp)
			}
		}
		if result.Len() > 0 {
			return result.String()
		}
	}

	return cleanString(string(raw))
}

func decodeLiteralString(s string) string {
	return cleanString(decodePDFEscapes(s))
}

// decodeTJArray decodes a TJ array, which interleaves strings with
// kerning numbers. Strings are concatenated in positional order.
func decodeTJArray(arrayContent string) string {
	type match struct {
		pos   int
		isHex bool
		text  string
	}
	var all []match

	for _, idx := range hexInArrayRe.FindAllStringSubmatchIndex(arrayContent, -1) {
		all = append(all, match{pos: idx[0], isHex: true, text: arrayContent[idx[2]:idx[3]]})
	}
	for _, idx := range litInArrayRe.FindAllStringSubmatchIndex(arrayContent, -1) {
		all = append(all, match{pos: idx[0], isHex: false, text: arrayContent[idx[2]:idx[3]]})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].pos < all[j].pos })

	var parts []string
	for _, m := range all {
		var text string
		if m.isHex {
			text = decodeHexString(m.text)
		} else {
			text = decodeLiteralString(m.text)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "")
}

// decodePDFEscapes resolves backslash escapes in literal strings,
// including up to three octal digits.
func decodePDFEscapes(s string) string {
	var buf strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '(':
				buf.WriteByte('(')
			case ')':
				buf.WriteByte(')')
			case '\\':
				buf.WriteByte('\\')
			default:
				if s[i] >= '0' && s[i] <= '7' {
					val := int(s[i] - '0')
					for j := 1; j < 3 && i+j < len(s) && s[i+j] >= '0' && s[i+j] <= '7'; j++ {
						val = val*8 + int(s[i+j]-'0')
						i++
					}
					if val >= 0 && val < 256 {
						buf.WriteByte(byte(val))
					}
				} else {
					buf.WriteByte(s[i])
				}
			}
		} else {
			buf.WriteByte(s[i])
		}
		i++
	}
	return buf.String()
}

// cleanString drops non-printable characters.
func cleanString(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, s))
}

// mergeStreamText joins per-stream text into a single logical page,
// skipping fragments too short to be statement lines.
func mergeStreamText(texts []string) []string {
	var current strings.Builder
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if len(t) > 10 {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(t)
		}
	}
	if current.Len() > 0 {
		return []string{current.String()}
	}

	// Everything was short fragments, keep them anyway
	var all strings.Builder
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t != "" {
			if all.Len() > 0 {
				all.WriteString("\n")
			}
			all.WriteString(t)
		}
	}
	if all.Len() > 0 {
		return []string{all.String()}
	}
	return nil
}
