package writer

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
	"gopkg.in/yaml.v3"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/label"
	"github.com/shibukawa/preic/numbering"
	"github.com/shibukawa/preic/testhelper"
)

func sampleTable(t *testing.T) *label.Table {
	t.Helper()

	table := label.NewTable()
	assert.NoError(t, table.Define(&label.Label{Kind: label.Line, Name: "end", LineNumber: 20}))
	assert.NoError(t, table.Define(&label.Label{Kind: label.Line, Name: "start", LineNumber: 0}))
	assert.NoError(t, table.Define(&label.Label{Kind: label.Variable, Name: "total", BasicName: "to0", Type: preic.FloatVariable}))
	assert.NoError(t, table.Define(&label.Label{Kind: label.Variable, Name: "name$", BasicName: "na$", Type: preic.StringVariable, Frequent: true}))
	assert.NoError(t, table.Define(&label.Label{Kind: label.Literal, Name: "screen", Value: "1024"}))
	assert.NoError(t, table.Define(&label.Label{Kind: label.Literal, Name: "border", Value: "53280"}))

	return table
}

func TestWriteSource(t *testing.T) {
	var buf bytes.Buffer

	err := WriteSource(&buf, []numbering.Line{
		{SourceLine: preic.SourceLine{Content: `print "hi"`}, BasicNumber: 0},
		{SourceLine: preic.SourceLine{Content: "goto 0"}, BasicNumber: 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, "0 print \"hi\"\n1 goto 0\n", buf.String())
}

func TestWriteLabelsText(t *testing.T) {
	var buf bytes.Buffer

	err := WriteLabels(&buf, sampleTable(t), preic.LabelFormatText)
	assert.NoError(t, err)

	expected := testhelper.TrimIndent(t, `
		Label count: 6

		Line labels:
		0: start
		20: end

		Variable labels:
		na$: name$ - frequent
		to0: total

		Literal labels:
		border: 53280
		screen: 1024
	`)
	assert.Equal(t, expected, buf.String())
}

func TestWriteLabelsYAML(t *testing.T) {
	var buf bytes.Buffer

	err := WriteLabels(&buf, sampleTable(t), preic.LabelFormatYAML)
	assert.NoError(t, err)

	var dump labelDump
	assert.NoError(t, yaml.Unmarshal(buf.Bytes(), &dump))

	assert.Equal(t, 6, dump.Count)
	assert.Equal(t, []lineEntry{{Name: "start", Number: 0}, {Name: "end", Number: 20}}, dump.Lines)
	assert.Equal(t, "na$", dump.Variables[0].BasicName)
	assert.True(t, dump.Variables[0].Frequent)
	assert.Equal(t, "string", dump.Variables[0].Type)
	assert.Equal(t, literalEntry{Name: "border", Value: "53280"}, dump.Literals[0])
}

func TestWriteLabelsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	err := WriteLabels(&buf, label.NewTable(), "xml")
	assert.IsError(t, err, preic.ErrUnknownFlag)
}
