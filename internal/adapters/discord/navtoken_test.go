package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

func TestNavTokenRoundTrip(t *testing.T) {
	cases := []NavToken{
		{Action: ActionCastOpen, SubjectID: 27205, Kind: domain.KindMovie},
		{Action: ActionCastOpen, SubjectID: 1396, Kind: domain.KindTV},
		{Action: ActionCastPrev, SubjectID: 27205, Kind: domain.KindMovie, Page: 3},
		{Action: ActionCastNext, SubjectID: 1396, Kind: domain.KindTV, Page: 0},
		{Action: ActionCastNext, SubjectID: 1, Kind: domain.KindMovie, Page: 41},
		{Action: ActionBack, SubjectID: 27205, Kind: domain.KindMovie},
		{Action: ActionBack, SubjectID: 1396, Kind: domain.KindTV},
		{Action: ActionCover, SubjectID: 27205, Kind: domain.KindMovie},
		{Action: ActionDelete},
	}
	for _, want := range cases {
		t.Run(want.Encode(), func(t *testing.T) {
			got, err := DecodeNavToken(want.Encode())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeWireFormat(t *testing.T) {
	tok := NavToken{Action: ActionCastNext, SubjectID: 27205, Kind: domain.KindMovie, Page: 2}
	assert.Equal(t, "cast_next_27205_movie_2", tok.Encode())
	assert.LessOrEqual(t, len(tok.Encode()), customIDMaxLen)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"cast",
		"cast_27205",                   // missing kind
		"cast_27205_movie_0",           // open takes no page
		"cast_abc_movie",               // non-numeric id
		"cast_0_movie",                 // ids are positive
		"cast_-5_movie",                // negative id
		"cast_27205_person",            // kind outside the closed enum
		"cast_prev_27205_movie",        // nav without page
		"cast_prev_27205_movie_x",      // non-numeric page
		"cast_next_27205_movie_-1",     // negative page
		"cast_back_27205_movie",        // unknown sub-action
		"back_27205",                   // field count
		"back_27205_movie_extra",       // field count
		"cover_27205_anime",            // kind outside the closed enum
		"kick_select",                  // unrelated id
		"cast_27205_movie_extra_extra", // wrong shape
	}
	for _, id := range bad {
		t.Run(id, func(t *testing.T) {
			_, err := DecodeNavToken(id)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}
