// Package dataframe loads tabular data and exposes it as an ordered,
// indexable sequence of printable rows.
//
// A Frame holds the header and the records of a CSV file. Renderers wrap a
// Frame and satisfy Source, the only capability the pager needs:
//
//	frame, err := dataframe.FromCSV("survey.csv", dataframe.Options{})
//	if err != nil {
//	    return err // *LoadError, nothing has been rendered
//	}
//	src := dataframe.NewCSVLines(frame)
//	for i := 0; i < src.Len(); i++ {
//	    fmt.Println(src.Line(i))
//	}
//
// Two renderings are available. CSVLines re-encodes each record as a single
// CSV line, with quoting preserved. AlignedLines pads every cell to the
// display width of its column and truncates lines to a maximum width.
package dataframe
