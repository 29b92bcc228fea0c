package runtimeerrors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/dlclark/regexp2"
)

var fileNotFoundRules = []Rule{
	{Name: "no-such-file", Apply: noSuchFile},
}

var noSuchFileRe = regexp2.MustCompile(`No such file or directory: '(.*)'`, 0)

func noSuchFile(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	path, ok := firstGroup(noSuchFileRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	info := cause.Of(
		"Your program tried to open the file `%s`,\n"+
			"but no file with that name exists at that location.\n", path)

	if similar := similarFilenames(path); len(similar) == 1 {
		info.Cause += fmt.Sprintf(
			"A file named `%s` exists in the same directory;\n"+
				"perhaps that is the one you meant.\n", similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar[0])
	} else {
		info.Cause += "Check the spelling of the name, and whether the program is\n" +
			"running in the directory you expect.\n"
	}
	return info
}

// similarFilenames lists files in the target's directory whose names are
// close to the missing one.
func similarFilenames(path string) []string {
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return scope.GetSimilarWords(filepath.Base(path), names)
}
