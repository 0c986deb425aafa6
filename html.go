package main

/* Fixed page template wrapped around generated listing entries.
 * Title and heading both show the requested path. Entry names go
 * into href and display text raw, no re-encoding is performed.
 */
const (
	htmlPageHeaderStart = "<!DOCTYPE html>\n" +
		"<html>\n" +
		"<head>\n" +
		"<meta charset=\"utf-8\">\n" +
		"<title>"

	htmlPageHeaderEnd = "</h1>\n" +
		"<ul>\n"

	htmlPageFooter = "</ul>\n" +
		"</body>\n" +
		"</html>\n"
)

func renderListingPage(selector string, entries []DirEntry) []byte {
	page := htmlPageHeaderStart +
		selector +
		"</title>\n" +
		"</head>\n" +
		"<body>\n" +
		"<h1>" +
		selector +
		htmlPageHeaderEnd

	for _, entry := range entries {
		page += buildEntryLine(entry)
	}

	page += htmlPageFooter

	return []byte(page)
}

func buildEntryLine(entry DirEntry) string {
	switch entry.Kind {
	case EntryParent:
		return "<li>[D] <a href=\"./..\">..</a></li>\n"

	case EntryDirectory:
		return "<li>[D] <a href=\"./" + entry.Name + "/\">" + entry.Name + "</a></li>\n"

	default:
		return "<li>[F] <a href=\"./" + entry.Name + "\">" + entry.Name + "</a></li>\n"
	}
}
