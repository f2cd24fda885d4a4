package stub

import (
	"path/filepath"
	"strings"
)

// ClassFile maps a namespace-relative class to its PSR-4 file under srcDir:
// `\Controllers\Admin\Panel` → <srcDir>/Controllers/Admin/Panel.php.
func ClassFile(srcDir, class string) string {
	parts := strings.Split(strings.Trim(class, `\`), `\`)
	return filepath.Join(srcDir, filepath.Join(parts...)+".php")
}

// ClassData splits a namespace-relative class into the namespace and class
// name a class template needs, rooted at rootNamespace.
func ClassData(rootNamespace, class string) Data {
	class = strings.Trim(class, `\`)
	ns, name := "", class
	if i := strings.LastIndex(class, `\`); i >= 0 {
		ns, name = class[:i], class[i+1:]
	}
	full := strings.TrimRight(rootNamespace, `\`)
	if ns != "" {
		full += `\` + ns
	}
	return Data{Namespace: full, ClassName: name}
}
