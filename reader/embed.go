package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shibukawa/preic"
)

const (
	maxBytesInData   = 150
	maxBytesInPrint  = 128
	maxBytesInRemark = 256
)

// printedByte is the printable form of the screen characters $00-$7F.
// $80-$FF are the same characters in reverse video.
var printedByte = [128]string{
	// $00
	"@", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
	// $10
	"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "[", `\`, "]", "^", "_",
	// $20, a double quote would switch quote mode so it is printed twice and one is deleted
	" ", "!", `";chr$(34);chr$(34);"{del}`, "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".", "/",
	// $30
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ":", ";", "<", "=", ">", "?",
	// $40
	"{SHIFT-*}", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	// $50
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "{SHIFT-+}", "{CBM--}", "{SHIFT--}", "~", "{CBM-*}",
	// $60
	"{$a0}", "{CBM-K}", "{CBM-I}", "{CBM-T}", "{CBM-@}", "{CBM-G}", "{CBM-+}", "{CBM-M}",
	"{CBM-POUND}", "{SHIFT-POUND}", "{CBM-N}", "{CBM-Q}", "{CBM-D}", "{CBM-Z}", "{CBM-S}", "{CBM-P}",
	// $70
	"{CBM-A}", "{CBM-E}", "{CBM-R}", "{CBM-W}", "{CBM-H}", "{CBM-J}", "{CBM-L}", "{CBM-Y}",
	"{CBM-U}", "{CBM-O}", "{SHIFT-@}", "{CBM-F}", "{CBM-C}", "{CBM-X}", "{CBM-V}", "{CBM-B}",
}

func chunks(data []byte, size int) [][]byte {
	var result [][]byte
	for len(data) > size {
		result = append(result, data[:size])
		data = data[size:]
	}

	if len(data) > 0 {
		result = append(result, data)
	}

	return result
}

// dataLines turns the bytes into "data 1,2,3" lines
func dataLines(data []byte) []string {
	var lines []string

	for _, chunk := range chunks(data, maxBytesInData) {
		items := make([]string, len(chunk))
		for i, b := range chunk {
			items[i] = strconv.Itoa(int(b))
		}

		lines = append(lines, "data "+strings.Join(items, ","))
	}

	return lines
}

// printLines turns screen codes into print"..."; lines
func printLines(data []byte) []string {
	var lines []string

	for _, chunk := range chunks(data, maxBytesInPrint) {
		var b strings.Builder
		b.WriteString(`print"`)

		reverse := false
		for _, c := range chunk {
			switch {
			case c >= 128 && !reverse:
				reverse = true
				b.WriteString("{rvon}")
			case c < 128 && reverse:
				reverse = false
				b.WriteString("{rvof}")
			}

			b.WriteString(printedByte[c&127])
		}

		if reverse {
			b.WriteString("{rvof}")
		}

		b.WriteString(`";`)
		lines = append(lines, b.String())
	}

	return lines
}

// remarkLines turns the bytes into rem"{$xx}... lines, zero bytes would end the line early
func remarkLines(data []byte, line preic.SourceLine) ([]string, error) {
	for i, b := range data {
		if b == 0 {
			return nil, preic.NewSourceError(preic.ErrZeroByteInRemark, line, "offset %d", i)
		}
	}

	var lines []string

	for _, chunk := range chunks(data, maxBytesInRemark) {
		var b strings.Builder
		b.WriteString(`rem"`)

		for _, c := range chunk {
			fmt.Fprintf(&b, "{$%02x}", c)
		}

		lines = append(lines, b.String())
	}

	return lines, nil
}
