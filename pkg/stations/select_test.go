package stations

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/tidestations/pkg/config"
)

func TestSelectWarnsOnce(t *testing.T) {
	all := catalog("9414290", "8454000")
	var warn, debug bytes.Buffer

	got := Select(all, config.Selection{IDs: []string{"8454000", "1234567"}},
		log.New(&warn, "", 0), log.New(&debug, "", 0))

	if diff := cmp.Diff(ids(got), []string{"8454000"}); diff != "" {
		t.Errorf("selected (-got,+want): %s", diff)
	}
	want := "Warning: 1 requested station(s) not found:\n  - 1234567\n"
	if warn.String() != want {
		t.Errorf("got warnings %q, wanted %q", warn.String(), want)
	}
	if !strings.Contains(debug.String(), "Filtered 2 stations to 1 stations") {
		t.Errorf("got debug %q", debug.String())
	}
}

func TestSelectAll(t *testing.T) {
	all := catalog("9414290", "8454000")
	var warn bytes.Buffer

	got := Select(all, config.Selection{}, log.New(&warn, "", 0), nil)
	if diff := cmp.Diff(ids(got), []string{"9414290", "8454000"}); diff != "" {
		t.Errorf("selected (-got,+want): %s", diff)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings %q", warn.String())
	}
}
