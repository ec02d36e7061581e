package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/champion-scraper/internal/domain"
)

const rosterFixture = `
<table class="article-table">
  <tbody>
    <tr>
      <th>Champion</th><th>Classes</th><th>Release Date</th><th>Last Changed</th>
    </tr>
    <tr>
      <td data-sort-value="Aatrox"><a href="/wiki/Aatrox/LoL">Aatrox</a></td>
      <td>Juggernaut</td>
      <td>2013-06-13</td>
      <td> V25.03 </td>
    </tr>
    <tr>
      <td data-sort-value="Ahri"><a href="/wiki/Ahri/LoL">Ahri</a></td>
      <td>Burst</td>
      <td>2011-12-14</td>
      <td>V25.05</td>
    </tr>
  </tbody>
</table>`

func TestParseRoster(t *testing.T) {
	entries, err := ParseRoster(rosterFixture, "https://leagueoflegends.fandom.com")
	require.NoError(t, err)

	require.Equal(t, []domain.ChampionEntry{
		{
			Name:             "Aatrox",
			LastChangedPatch: "V25.03",
			StatsURL:         "https://leagueoflegends.fandom.com/wiki/Aatrox/LoL",
		},
		{
			Name:             "Ahri",
			LastChangedPatch: "V25.05",
			StatsURL:         "https://leagueoflegends.fandom.com/wiki/Ahri/LoL",
		},
	}, entries)
}

func TestParseRosterDeterministic(t *testing.T) {
	first, err := ParseRoster(rosterFixture, "https://leagueoflegends.fandom.com")
	require.NoError(t, err)
	second, err := ParseRoster(rosterFixture, "https://leagueoflegends.fandom.com")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseRosterEmptyTable(t *testing.T) {
	_, err := ParseRoster(`<table class="article-table"><tbody></tbody></table>`, "https://leagueoflegends.fandom.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no champion rows")
}

func TestParseRosterHeaderOnly(t *testing.T) {
	fixture := `<table class="article-table"><tbody>
	  <tr><th>Champion</th><th>Classes</th><th>Release Date</th><th>Last Changed</th></tr>
	</tbody></table>`
	_, err := ParseRoster(fixture, "https://leagueoflegends.fandom.com")
	require.Error(t, err)
}

func TestResolveURL(t *testing.T) {
	require.Equal(t,
		"https://leagueoflegends.fandom.com/wiki/Ahri/LoL",
		resolveURL("https://leagueoflegends.fandom.com", "/wiki/Ahri/LoL"))
	require.Equal(t,
		"https://other.example/wiki/Ahri",
		resolveURL("https://leagueoflegends.fandom.com", "https://other.example/wiki/Ahri"))
}
