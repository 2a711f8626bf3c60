package master

import (
	"html"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	delimOpen  = "{{"
	delimClose = "}}"

	tagTitle       = "title"
	tagTime        = "time"
	tagContent     = "content"
	tagDescription = "description"
	tagStart       = "start"
	tagStyle       = "style"

	styleRoom     = "room"
	styleRoomLong = "roomlong"

	// longNameThreshold is the event name length above which the room name
	// of an all-rooms row switches to the long style.
	longNameThreshold = 14
)

var (
	pageTemplate = fasttemplate.New(`
<div id="titlepane">
    <table>
        <tr>
            <td class="logo"><img src="logo.png" /></td>
            <td class="title">{{title}}</td>
            <td class="clock">{{time}}</td>
        </tr>
    </table>
</div>
<div id="contentpane">
    <table>{{content}}</table>
</div>
`, delimOpen, delimClose)

	eventRowTemplate = fasttemplate.New(`
        <tr>
            <td class="desc"><div class="cell">{{description}}</div></td>
            <td class="time">{{start}}</td>
        </tr>
`, delimOpen, delimClose)

	nowRowTemplate = fasttemplate.New(`
        <tr>
            <td class="nowdesc"><div class="cell">{{description}}</div></td>
            <td class="room"><div class="{{style}}">{{start}}</div></td>
        </tr>
`, delimOpen, delimClose)
)

// page substitutes the escaped title and clock and the already rendered rows.
func page(title, clock, content string) string {
	return pageTemplate.ExecuteString(map[string]any{
		tagTitle:   html.EscapeString(title),
		tagTime:    html.EscapeString(clock),
		tagContent: content,
	})
}

type rows struct {
	strings.Builder
}

func (r *rows) event(description, start string) {
	r.WriteString(eventRowTemplate.ExecuteString(map[string]any{
		tagDescription: html.EscapeString(description),
		tagStart:       html.EscapeString(start),
	}))
}

func (r *rows) now(description, room, style string) {
	r.WriteString(nowRowTemplate.ExecuteString(map[string]any{
		tagDescription: html.EscapeString(description),
		tagStart:       html.EscapeString(room),
		tagStyle:       style,
	}))
}
