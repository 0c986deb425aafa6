package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

/* Build a root dir with a couple of files and a subdirectory */
func newListingRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("failed writing test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "B.txt"), []byte("upper"), 0644); err != nil {
		t.Fatalf("failed writing test file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatalf("failed creating test dir: %v", err)
	}

	return root
}

func parseListing(t *testing.T, body []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed parsing listing HTML: %v", err)
	}
	return doc
}

func TestBuildListingRoot(t *testing.T) {
	root := newListingRoot(t)
	config := newTestConfig(root)

	body, serveErr := buildListing(config, NewRequestPath(root, ""))
	if serveErr != nil {
		t.Fatalf("buildListing failed: %s", serveErr.Error())
	}

	doc := parseListing(t, body)

	if title := doc.Find("title").Text(); title != "/" {
		t.Errorf("title = %q, expected %q", title, "/")
	}
	if heading := doc.Find("h1").Text(); heading != "/" {
		t.Errorf("heading = %q, expected %q", heading, "/")
	}

	items := doc.Find("li")
	if items.Length() != 3 {
		t.Fatalf("expected 3 listing entries, got %d", items.Length())
	}

	/* Directories first, then files byte-wise sorted ('B' < 'a'), no parent at root */
	expected := []struct {
		text string
		href string
	}{
		{"[D] sub", "./sub/"},
		{"[F] B.txt", "./B.txt"},
		{"[F] a.txt", "./a.txt"},
	}

	items.Each(func(i int, item *goquery.Selection) {
		if text := item.Text(); text != expected[i].text {
			t.Errorf("entry %d text = %q, expected %q", i, text, expected[i].text)
		}
		href, ok := item.Find("a").Attr("href")
		if !ok || href != expected[i].href {
			t.Errorf("entry %d href = %q, expected %q", i, href, expected[i].href)
		}
	})
}

func TestBuildListingSubdirParentEntry(t *testing.T) {
	root := newListingRoot(t)
	config := newTestConfig(root)

	body, serveErr := buildListing(config, NewRequestPath(root, "sub/"))
	if serveErr != nil {
		t.Fatalf("buildListing failed: %s", serveErr.Error())
	}

	doc := parseListing(t, body)

	if title := doc.Find("title").Text(); title != "/sub/" {
		t.Errorf("title = %q, expected %q", title, "/sub/")
	}

	items := doc.Find("li")
	if items.Length() != 1 {
		t.Fatalf("expected only the parent entry, got %d entries", items.Length())
	}
	if text := items.Text(); text != "[D] .." {
		t.Errorf("parent entry text = %q, expected %q", text, "[D] ..")
	}
	href, _ := items.Find("a").Attr("href")
	if href != "./.." {
		t.Errorf("parent entry href = %q, expected %q", href, "./..")
	}
}

func TestBuildListingSymlinkedChildren(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "real.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("failed writing test file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "realdir"), 0755); err != nil {
		t.Fatalf("failed creating test dir: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("cannot create symlinks: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "realdir"), filepath.Join(root, "linkdir")); err != nil {
		t.Fatalf("failed creating dir symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("failed creating dangling symlink: %v", err)
	}

	config := newTestConfig(root)

	body, serveErr := buildListing(config, NewRequestPath(root, ""))
	if serveErr != nil {
		t.Fatalf("buildListing failed: %s", serveErr.Error())
	}

	doc := parseListing(t, body)
	items := doc.Find("li")

	/* Symlinks classify as their target type, the dangling one is omitted */
	expected := []string{
		"[D] linkdir",
		"[D] realdir",
		"[F] link.txt",
		"[F] real.txt",
	}
	if items.Length() != len(expected) {
		t.Fatalf("expected %d listing entries, got %d: %q", len(expected), items.Length(), items.Text())
	}
	items.Each(func(i int, item *goquery.Selection) {
		if text := item.Text(); text != expected[i] {
			t.Errorf("entry %d text = %q, expected %q", i, text, expected[i])
		}
	})
}

func TestBuildListingMissingDir(t *testing.T) {
	root := t.TempDir()
	config := newTestConfig(root)

	_, serveErr := buildListing(config, NewRequestPath(root, "nope"))
	if serveErr == nil {
		t.Fatalf("expected error listing a missing directory")
	}
	if serveErr.Code != DirListErr {
		t.Errorf("expected DirListErr, got code %d", serveErr.Code)
	}
	if serveErr.Body() != ResponseCannotList {
		t.Errorf("body = %q, expected %q", serveErr.Body(), ResponseCannotList)
	}
}

func TestBuildListingRestrictedFiles(t *testing.T) {
	root := newListingRoot(t)
	config := newTestConfig(root)

	restricted, err := compileRestrictedFilesRegex("^B\\.")
	if err != nil {
		t.Fatalf("failed compiling restricted files regex: %v", err)
	}
	config.RestrictedFiles = restricted

	body, serveErr := buildListing(config, NewRequestPath(root, ""))
	if serveErr != nil {
		t.Fatalf("buildListing failed: %s", serveErr.Error())
	}

	doc := parseListing(t, body)
	items := doc.Find("li")
	if items.Length() != 2 {
		t.Fatalf("expected restricted file to be omitted, got %d entries", items.Length())
	}
	items.Each(func(i int, item *goquery.Selection) {
		if item.Text() == "[F] B.txt" {
			t.Errorf("restricted file leaked into listing")
		}
	})
}

func TestCompileRestrictedFilesRegex(t *testing.T) {
	if restricted, err := compileRestrictedFilesRegex(""); err != nil || restricted != nil {
		t.Errorf("empty list should compile to nil, got %v, %v", restricted, err)
	}

	restricted, err := compileRestrictedFilesRegex("^\\.\n~$")
	if err != nil {
		t.Fatalf("failed compiling restricted files regex: %v", err)
	}
	if len(restricted) != 2 {
		t.Fatalf("expected 2 compiled expressions, got %d", len(restricted))
	}
	if !isRestrictedFile(restricted, ".hidden") {
		t.Errorf("expected dotfile to match")
	}
	if !isRestrictedFile(restricted, "backup~") {
		t.Errorf("expected tilde suffix to match")
	}
	if isRestrictedFile(restricted, "visible.txt") {
		t.Errorf("expected plain name not to match")
	}
	if isRestrictedFile(nil, ".hidden") {
		t.Errorf("nil restriction list should never match")
	}

	if _, err := compileRestrictedFilesRegex("(unclosed"); err == nil {
		t.Errorf("expected error for invalid regex")
	}
}
