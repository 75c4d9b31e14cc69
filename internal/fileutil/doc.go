// Package fileutil enumerates the files a search run should look at.
//
// The walk is depth-first and reads each directory in lexicographic order, so
// two runs over an unchanged tree visit files in the same sequence. Files are
// selected by an exact, case-sensitive extension allow-list:
//
//	err := fileutil.Walk(root, fileutil.ScanOptions{
//	    Extensions:  []string{".c", ".h", ".txt", ".py", ".md"},
//	    ExcludeDirs: []string{".git"},
//	}, func(path string) {
//	    fmt.Println(path)
//	}, func(dir string, err error) {
//	    log.Printf("skipping %s: %v", dir, err)
//	})
//
// # Error Tolerance
//
// A directory that cannot be read (permissions, removed mid-walk) is reported
// to the DirErrorFunc and its subtree is skipped. Only a root that is missing
// or not a directory fails the walk; callers can test for the latter with
// errors.Is(err, ErrNotDirectory).
//
// # Symlinks
//
// Symlinks to regular files are followed. Symlinked directories are never
// descended, which keeps the walk finite without cycle detection.
//
// ScanDirectory is the collecting variant used for listing files without
// searching them.
package fileutil
