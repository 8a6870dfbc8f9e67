package sources_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

func TestRegistryShape(t *testing.T) {
	global := sources.Global()
	latam := sources.Latam()
	all := sources.All()

	require.Len(t, global, 8)
	require.Len(t, latam, 4)
	require.Len(t, all, len(global)+len(latam))

	names := make(map[string]struct{}, len(all))
	for _, src := range all {
		require.NotEmpty(t, src.Name)
		require.NotEmpty(t, src.URL)
		require.NotEmpty(t, src.Kind)
		require.NotEmpty(t, src.Language)

		_, dup := names[src.Name]
		require.False(t, dup, "duplicate source name %q", src.Name)
		names[src.Name] = struct{}{}
	}

	for _, src := range global {
		require.Equal(t, types.RegionGlobal, src.Region, src.Name)
	}
	for _, src := range latam {
		require.Equal(t, types.RegionLatam, src.Region, src.Name)
		require.Equal(t, "es", src.Language, src.Name)
	}
}

func TestFetchURL(t *testing.T) {
	d := sources.Descriptor{URL: "https://example.com/page"}
	require.Equal(t, "https://example.com/page", d.FetchURL())

	d.FeedURL = "https://example.com/feed"
	require.Equal(t, "https://example.com/feed", d.FetchURL())
}

func TestNeedsBrowser(t *testing.T) {
	for _, src := range sources.All() {
		switch src.Name {
		case "Broadcom Security Advisories", "Fortinet FortiGuard PSIRT",
			"Stellar Cyber Support", "Stellar Cyber Trust Center":
			require.True(t, sources.NeedsBrowser(src.Name), src.Name)
		default:
			require.False(t, sources.NeedsBrowser(src.Name), src.Name)
		}
	}
}

func TestTelegramSourceIsRegistered(t *testing.T) {
	var found bool
	for _, src := range sources.Latam() {
		if src.Kind == sources.KindTelegram {
			found = true
			require.Contains(t, src.URL, "t.me/")
		}
	}
	require.True(t, found)
}
