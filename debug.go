package sole

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func PrintRecords() {
	FprintRecords(os.Stdout)
}

func FprintRecords(w io.Writer) {
	records := Records()

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(no singletons defined)")
		return
	}

	for _, rec := range records {
		status := "○"
		if rec.Initialized {
			status = "●"
		}

		if flags := recordFlags(rec); flags != "" {
			_, _ = fmt.Fprintf(w, "%s %s [%s]\n", status, rec.Key, flags)
		} else {
			_, _ = fmt.Fprintf(w, "%s %s\n", status, rec.Key)
		}
	}
}

func SprintRecords() string {
	var sb strings.Builder
	FprintRecords(&sb)
	return sb.String()
}

func recordFlags(rec Record) string {
	var flags []string
	if rec.ThreadSafe {
		flags = append(flags, "thread-safe")
	}
	if rec.AllowSubclass {
		flags = append(flags, "subclassable")
	}
	if rec.AllowReassignment {
		flags = append(flags, "reassignable")
	}
	return strings.Join(flags, " ")
}
