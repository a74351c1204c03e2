package md2docx

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Charset names with special handling.
const (
	CharsetUTF8 = "utf-8"
	CharsetAuto = "auto"
)

const utf8BOM = "\ufeff"

// decodeInput converts raw input bytes to a string according to charset.
//
// UTF-8 is strict: invalid input is an error rather than being patched with
// replacement characters. "auto" runs charset detection.
func decodeInput(data []byte, charset string) (string, error) {
	switch normalizeCharset(charset) {
	case "", "utf8", "utf8bom":
		if !utf8.Valid(data) {
			return "", &DecodeError{Charset: CharsetUTF8, Err: errInvalidUTF8}
		}
		return strings.TrimPrefix(string(data), utf8BOM), nil
	case "auto":
		return decodeWithDetection(data)
	}

	enc := lookupEncoding(charset)
	if enc == nil {
		return "", &DecodeError{Charset: charset, Err: errUnknownCharset}
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Charset: charset, Err: err}
	}
	return strings.TrimPrefix(string(decoded), utf8BOM), nil
}

// decodeWithDetection detects the encoding of data and decodes it to UTF-8.
func decodeWithDetection(data []byte) (string, error) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), utf8BOM), nil
	}

	best, bestScore := "", 0
	results, _ := chardet.NewTextDetector().DetectAll(data)
	for _, r := range results {
		enc := lookupEncoding(r.Charset)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(decoded)
		// Undecodable bytes come back as U+FFFD without an error.
		if strings.ContainsRune(text, utf8.RuneError) {
			continue
		}
		if score := scoreDecodedText(text, r.Confidence); best == "" || score > bestScore {
			best, bestScore = text, score
		}
	}
	if best != "" {
		return best, nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err == nil && !strings.ContainsRune(string(decoded), utf8.RuneError) {
		return string(decoded), nil
	}
	return "", &DecodeError{Charset: CharsetAuto, Err: errNoCharsetDetected}
}

// scoreDecodedText ranks a candidate decoding. Higher is more plausible.
func scoreDecodedText(text string, confidence int) int {
	score := confidence
	for _, r := range text {
		switch {
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			score -= 5
		case r >= 0x80 && r < 0xA0:
			score -= 5
		case r >= 0x3040 && r <= 0x30FF, r >= 0xFF00 && r <= 0xFFEF:
			score += 5
		case r >= 0x4E00 && r <= 0x9FFF:
			score++
		case r >= 'A' && r <= 'z':
			score++
		}
	}
	return score
}

func normalizeCharset(charset string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(charset), "-", ""), "_", ""))
}

// lookupEncoding maps charset names to Go encoding implementations.
func lookupEncoding(charset string) encoding.Encoding {
	switch normalizeCharset(charset) {
	case "utf8", "utf8bom":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "iso2022jp":
		return japanese.ISO2022JP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5", "cp950":
		return traditionalchinese.Big5
	case "ascii", "usascii":
		return unicode.UTF8
	}
	return nil
}
