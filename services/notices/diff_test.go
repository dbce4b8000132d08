package notices

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectNew(t *testing.T) {
	baseline := map[string]struct{}{
		"https://x/a": {},
	}

	t.Run("filters seen urls and preserves order", func(t *testing.T) {
		selected, dropped := SelectNew([]Notice{
			{Title: "C", Url: "https://x/c"},
			{Title: "A", Url: "https://x/a"},
			{Title: "B", Url: "https://x/b"},
		}, baseline)

		require.Equal(t, 0, dropped)
		require.Len(t, selected, 2)
		require.Equal(t, "https://x/c", selected[0].Url)
		require.Equal(t, "https://x/b", selected[1].Url)
	})

	t.Run("drops entries without a url", func(t *testing.T) {
		selected, dropped := SelectNew([]Notice{
			{Title: "no url"},
			{Title: "B", Url: "https://x/b"},
		}, baseline)

		require.Equal(t, 1, dropped)
		require.Len(t, selected, 1)
		require.Equal(t, "https://x/b", selected[0].Url)
	})

	t.Run("first occurrence wins on duplicate urls", func(t *testing.T) {
		selected, dropped := SelectNew([]Notice{
			{Title: "first", Url: "https://x/b"},
			{Title: "second", Url: "https://x/b"},
		}, baseline)

		require.Equal(t, 0, dropped)
		require.Len(t, selected, 1)
		require.Equal(t, "first", selected[0].Title)
	})

	t.Run("empty listing yields nothing", func(t *testing.T) {
		selected, dropped := SelectNew(nil, baseline)
		require.Equal(t, 0, dropped)
		require.Empty(t, selected)
	})
}
