package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

// Action is the closed set of things a component custom id can ask for. The
// router decodes a clicked id into one of these exactly once; nothing
// downstream re-parses the string.
type Action int

const (
	ActionCastOpen Action = iota
	ActionCastPrev
	ActionCastNext
	ActionBack
	ActionCover
	ActionDelete
)

var ErrMalformedToken = errors.New("malformed navigation token")

const (
	customIDDelete        = "delete_image"
	customIDPageIndicator = "page_indicator"

	// Discord rejects custom ids above this length.
	customIDMaxLen = 100
)

// NavToken is the entire session state of one interactive message, carried on
// the button that was clicked. Decoding it plus one fresh provider fetch is
// enough to rebuild the view it names.
type NavToken struct {
	Action    Action
	SubjectID int
	Kind      domain.Kind
	Page      int // cast pages only
}

// Encode serializes the token into a custom id. The wire format is a plain
// "_"-join, so no field may contain the delimiter; Kind is a closed enum and
// the ids are integers, which guarantees that.
func (t NavToken) Encode() string {
	var id string
	switch t.Action {
	case ActionCastOpen:
		id = fmt.Sprintf("cast_%d_%s", t.SubjectID, t.Kind)
	case ActionCastPrev:
		id = fmt.Sprintf("cast_prev_%d_%s_%d", t.SubjectID, t.Kind, t.Page)
	case ActionCastNext:
		id = fmt.Sprintf("cast_next_%d_%s_%d", t.SubjectID, t.Kind, t.Page)
	case ActionBack:
		id = fmt.Sprintf("back_%d_%s", t.SubjectID, t.Kind)
	case ActionCover:
		id = fmt.Sprintf("cover_%d_%s", t.SubjectID, t.Kind)
	case ActionDelete:
		return customIDDelete
	}
	if len(id) > customIDMaxLen {
		// unreachable with int ids and the closed kind enum
		panic("custom id over platform ceiling: " + id)
	}
	return id
}

// DecodeNavToken parses a clicked custom id. Anything that does not match the
// expected field count, kinds, or integer shapes fails with ErrMalformedToken;
// the caller must never act on a failed decode.
func DecodeNavToken(customID string) (NavToken, error) {
	if customID == customIDDelete {
		return NavToken{Action: ActionDelete}, nil
	}

	parts := strings.Split(customID, "_")
	switch {
	case len(parts) == 3 && parts[0] == "cast":
		return subjectToken(ActionCastOpen, parts[1], parts[2])

	case len(parts) == 5 && parts[0] == "cast" && (parts[1] == "prev" || parts[1] == "next"):
		action := ActionCastPrev
		if parts[1] == "next" {
			action = ActionCastNext
		}
		tok, err := subjectToken(action, parts[2], parts[3])
		if err != nil {
			return NavToken{}, err
		}
		page, err := strconv.Atoi(parts[4])
		if err != nil || page < 0 {
			return NavToken{}, fmt.Errorf("%w: bad page %q", ErrMalformedToken, parts[4])
		}
		tok.Page = page
		return tok, nil

	case len(parts) == 3 && parts[0] == "back":
		return subjectToken(ActionBack, parts[1], parts[2])

	case len(parts) == 3 && parts[0] == "cover":
		return subjectToken(ActionCover, parts[1], parts[2])
	}
	return NavToken{}, fmt.Errorf("%w: %q", ErrMalformedToken, customID)
}

func subjectToken(action Action, rawID, rawKind string) (NavToken, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return NavToken{}, fmt.Errorf("%w: bad subject id %q", ErrMalformedToken, rawID)
	}
	kind, ok := domain.ParseKind(rawKind)
	if !ok {
		return NavToken{}, fmt.Errorf("%w: bad kind %q", ErrMalformedToken, rawKind)
	}
	return NavToken{Action: action, SubjectID: id, Kind: kind}, nil
}
