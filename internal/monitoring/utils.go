package monitoring

import (
	"strconv"
	"strings"
)

var receiverReplacer = strings.NewReplacer("(*", "", "(", "", ")", "", "[...]", "")

// getSegmentName reduces a runtime function name to package.Receiver.Method.
// Trailing closure suffixes (func1, func2.3) are dropped so goroutines report
// the function that started them.
func getSegmentName(fullFuncName string) string {
	name := fullFuncName[strings.LastIndex(fullFuncName, "/")+1:]
	parts := strings.Split(receiverReplacer.Replace(name), ".")

	for len(parts) > 2 && isClosureName(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}

	return strings.Join(parts, ".")
}

func isClosureName(part string) bool {
	if !strings.HasPrefix(part, "func") {
		_, err := strconv.Atoi(part)
		return err == nil
	}

	_, err := strconv.Atoi(strings.TrimPrefix(part, "func"))
	return err == nil
}
