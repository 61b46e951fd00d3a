package pomsg

import (
	"fmt"
	"io"
	"strings"

	"github.com/robfig/gettext/po"
	"github.com/robfig/soyc/soymsg"
)

// placeholdersComment introduces the list of a message's placeholder names.
const placeholdersComment = "placeholders: "

// Extractor collects messages into a PO template.
// Messages with the same fingerprint are merged into one entry.
type Extractor struct {
	file  po.File
	index map[uint64]int // fingerprint to position in file.Messages
}

// NewExtractor returns an empty extractor.
func NewExtractor() *Extractor {
	return &Extractor{index: make(map[uint64]int)}
}

// Add records a message. It has the signature of soyjs.Options.OnMessage.
func (e *Extractor) Add(msg *soymsg.Message) {
	var id = msg.Fingerprint()
	var location = fmt.Sprintf("%s:%d", msg.File, msg.Line)
	if i, ok := e.index[id]; ok {
		var existing = &e.file.Messages[i]
		existing.References = append(existing.References, location)
		if msg.Desc != "" && !contains(existing.ExtractedComments, msg.Desc) {
			existing.ExtractedComments = append(existing.ExtractedComments, msg.Desc)
		}
		return
	}

	var comment = po.Comment{
		References: []string{fmt.Sprintf("id=%d", id), location},
	}
	if msg.Desc != "" {
		comment.ExtractedComments = []string{msg.Desc}
	}
	if len(msg.Params) > 0 {
		comment.ExtractedComments = append(comment.ExtractedComments,
			placeholdersComment+strings.Join(msg.Params.Names(), ", "))
	}
	e.index[id] = len(e.file.Messages)
	e.file.Messages = append(e.file.Messages, po.Message{
		Comment: comment,
		Ctxt:    msg.Meaning,
		Id:      msg.Text,
	})
}

// Len returns the number of distinct messages.
func (e *Extractor) Len() int {
	return len(e.file.Messages)
}

// WriteTo writes the PO template.
func (e *Extractor) WriteTo(w io.Writer) (int64, error) {
	return e.file.WriteTo(w)
}

// Extract writes a PO template containing the given messages.
func Extract(w io.Writer, msgs []*soymsg.Message) error {
	var e = NewExtractor()
	for _, msg := range msgs {
		e.Add(msg)
	}
	_, err := e.WriteTo(w)
	return err
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
