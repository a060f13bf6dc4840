package domain

const DefaultRetries = 5

// DownloadEntry is one file an acquisition stage must fetch. With Extract
// set the file is a zip archive unpacked next to Path on arrival.
type DownloadEntry struct {
	URL     string
	Path    string
	Extract bool
}

type DownloadSet struct {
	Entries []DownloadEntry
	Retries int
}

func NewDownloadSet() DownloadSet {
	return DownloadSet{Retries: DefaultRetries}
}

func (s *DownloadSet) Add(entry DownloadEntry) {
	s.Entries = append(s.Entries, entry)
}

func (s DownloadSet) Len() int {
	return len(s.Entries)
}

func (s DownloadSet) Empty() bool {
	return len(s.Entries) == 0
}
