// Go to a pdb website and download coordinates. Most sites give us the
// old PDB format, the last one mmCIF, which is all there is for the
// biggest structures. The main point is to visit the web page and return a reader that
// can be used like the file readers.

package pdb

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrew-torda/sstruct/pdb/zwrap"
)

// Site is somewhere we can get coordinates from. The URL is
// Base + code + Suffix, where code is the four letter code, lower case,
// with Prefix in front of it.
type Site struct {
	Base, Prefix, Suffix string
	Gzipped              bool
	Cif                  bool // mmCIF rather than the old format
}

func (s Site) format() byte {
	if s.Cif {
		return mmcifFmt
	}
	return oldFmt
}

// Sites are the places we try, in order. Tests point this at their own
// server.
var Sites = []Site{
	{Base: "https://files.rcsb.org/download/", Suffix: ".pdb.gz", Gzipped: true},
	{Base: "https://www.ebi.ac.uk/pdbe/entry-files/download/", Prefix: "pdb", Suffix: ".ent"},
	{Base: "https://ftp.pdbj.org/pub/pdb/data/structures/all/pdb/", Prefix: "pdb", Suffix: ".ent.gz", Gzipped: true},
	{Base: "https://files.rcsb.org/download/", Suffix: ".cif.gz", Gzipped: true, Cif: true},
}

// getHTTP is given a four letter pdb code. It goes to the protein data
// bank and should return a reader.
// If siteNum is too big, we use a modulo to wrap it around, rather than
// generate an error. This makes it easier to cycle through them or pick
// one at random.
// If the site sends gzipped data, we call zwrap to decompress and
// return that as the reader.
func getHTTP(acqCode string, siteNum int) (io.ReadCloser, error) {
	if len(acqCode) != 4 {
		return nil, fmt.Errorf("acq code should be four char, not %q", acqCode)
	}
	site := Sites[siteNum%len(Sites)]
	url := site.Base + site.Prefix + strings.ToLower(acqCode) + site.Suffix

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("wanted %s using %s, got %s", acqCode, url, resp.Status)
	}

	if site.Gzipped {
		rdr, err := zwrap.Wrap(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		return rdr, nil
	}
	return resp.Body, nil
}
