package pdb

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// Test_get_http points every site at a local server and checks the
// names asked for and that site numbers wrap around.
func Test_get_http(t *testing.T) {
	plain, err := os.ReadFile(filepath.Join("testdata", "xtst.pdb"))
	if err != nil {
		t.Fatal(err)
	}
	gz, err := os.ReadFile(filepath.Join("testdata", "xtst.pdb.gz"))
	if err != nil {
		t.Fatal(err)
	}
	var mu sync.Mutex
	var asked []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		asked = append(asked, r.URL.Path)
		mu.Unlock()
		if filepath.Ext(r.URL.Path) == ".gz" {
			w.Write(gz)
		} else {
			w.Write(plain)
		}
	}))
	defer srv.Close()

	old := Sites
	defer func() { Sites = old }()
	Sites = make([]Site, len(old))
	for i, s := range old {
		s.Base = srv.URL + "/"
		Sites[i] = s
	}
	want := []string{"/5zck.pdb.gz", "/pdb5zck.ent", "/pdb5zck.ent.gz", "/5zck.cif.gz", "/5zck.pdb.gz"}
	for i := range want {
		rdr, err := getHTTP("5ZCK", i)
		if err != nil {
			t.Fatal(err)
		}
		c, err := io.ReadAll(rdr)
		rdr.Close()
		if len(c) != len(plain) || err != nil {
			t.Errorf("site %d got %v bytes, err = %v", i, len(c), err)
		}
	}
	for i := range want {
		if asked[i] != want[i] {
			t.Errorf("site %d asked for %s, wanted %s", i, asked[i], want[i])
		}
	}
}
