package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SingleFile(t *testing.T) {
	input := `diff --git a/file.go b/file.go
index abc1234..def5678 100644
--- a/file.go
+++ b/file.go
@@ -10,6 +10,7 @@ func example() {
 	context line
-	deleted line
+	added line
 	more context
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	require.Equal(t, "file.go", f.OldPath)
	require.Equal(t, "file.go", f.NewPath)
	require.Equal(t, 1, f.Additions)
	require.Equal(t, 1, f.Deletions)
	require.False(t, f.IsBinary)
	require.False(t, f.IsRenamed)
	require.Len(t, f.Hunks, 1)

	h := f.Hunks[0]
	require.Equal(t, 10, h.OldStart)
	require.Equal(t, 6, h.OldLines)
	require.Equal(t, 10, h.NewStart)
	require.Equal(t, 7, h.NewLines)
	require.Equal(t, "func example() {", h.Section)
	require.Equal(t, []string{
		" \tcontext line",
		"-\tdeleted line",
		"+\tadded line",
		" \tmore context",
	}, h.Lines)
}

func TestParse_MultipleFilesAndHunks(t *testing.T) {
	input := `diff --git a/a.go b/a.go
index 1111111..2222222 100644
--- a/a.go
+++ b/a.go
@@ -1,2 +1,2 @@
-old
+new
 same
@@ -10,1 +10,2 @@
 ctx
+tail
diff --git a/b.go b/b.go
index 3333333..4444444 100644
--- a/b.go
+++ b/b.go
@@ -5 +5 @@
-x
+y
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Len(t, files[0].Hunks, 2)
	require.Len(t, files[1].Hunks, 1)

	// Omitted count defaults to 1.
	require.Equal(t, 1, files[1].Hunks[0].OldLines)
	require.Equal(t, 1, files[1].Hunks[0].NewLines)

	require.Equal(t, 2, files[0].Additions)
	require.Equal(t, 1, files[0].Deletions)
}

func TestParse_Rename(t *testing.T) {
	input := `diff --git a/old_name.go b/new_name.go
similarity index 95%
rename from old_name.go
rename to new_name.go
index abc1234..def5678 100644
--- a/old_name.go
+++ b/new_name.go
@@ -1,1 +1,1 @@
-a
+b
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	require.True(t, f.IsRenamed)
	require.Equal(t, 95, f.Similarity)
	require.Equal(t, "old_name.go", f.OldPath)
	require.Equal(t, "new_name.go", f.NewPath)
}

func TestParse_Binary(t *testing.T) {
	input := `diff --git a/image.png b/image.png
index abc1234..def5678 100644
Binary files a/image.png and b/image.png differ
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.True(t, files[0].IsBinary)
	require.Empty(t, files[0].Hunks)
}

func TestParse_NewAndDeletedFiles(t *testing.T) {
	input := `diff --git a/created.go b/created.go
new file mode 100644
index 0000000..abc1234
--- /dev/null
+++ b/created.go
@@ -0,0 +1,2 @@
+package created
+
diff --git a/removed.go b/removed.go
deleted file mode 100644
index abc1234..0000000
--- a/removed.go
+++ /dev/null
@@ -1,1 +0,0 @@
-package removed
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, files, 2)

	require.True(t, files[0].IsNew)
	require.Equal(t, "/dev/null", files[0].OldPath)
	require.Equal(t, "created.go", files[0].Path())

	require.True(t, files[1].IsDeleted)
	require.Equal(t, "/dev/null", files[1].NewPath)
	require.Equal(t, "removed.go", files[1].Path())
}

func TestParse_NormalizesBlankContextLines(t *testing.T) {
	// Some producers emit blank context lines with the leading space
	// stripped; the parser restores the prefix so classification works.
	input := "diff --git a/f.go b/f.go\n" +
		"--- a/f.go\n" +
		"+++ b/f.go\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"\n" +
		"-b\n" +
		"+c\n"

	files, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, []string{" a", " ", "-b", "+c"}, files[0].Hunks[0].Lines)
}

func TestParse_TrailingNewline(t *testing.T) {
	input := "diff --git a/f.go b/f.go\n" +
		"--- a/f.go\n" +
		"+++ b/f.go\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-old\n" +
		"+new\n"

	// The terminating newline must not append a phantom context line.
	files, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, []string{"-old", "+new"}, files[0].Hunks[0].Lines)

	// A stripped blank context line at the very end still normalizes.
	files, err = Parse(input + "\n")
	require.NoError(t, err)
	require.Equal(t, []string{"-old", "+new", " "}, files[0].Hunks[0].Lines)
}

func TestParse_SkipsNoNewlineMarker(t *testing.T) {
	input := `diff --git a/f.txt b/f.txt
--- a/f.txt
+++ b/f.txt
@@ -1,1 +1,1 @@
-old
\ No newline at end of file
+new
\ No newline at end of file
`

	files, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, []string{"-old", "+new"}, files[0].Hunks[0].Lines)
}

func TestParse_Empty(t *testing.T) {
	files, err := Parse("")
	require.NoError(t, err)
	require.Nil(t, files)
}
