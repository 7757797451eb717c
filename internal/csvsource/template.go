package csvsource

import (
	"fmt"
	"os"
)

// TemplateFilename is the fixed name the template is written to, in the
// working directory.
const TemplateFilename = "dns_records_template.csv"

const templateContent = "env,zone,type,name,value,ttl\n" +
	"prod,example.com,CNAME,www,target.example.com,300\n" +
	"prod,example.com,TXT,_verification,verification-code-here,300\n"

// WriteTemplate writes an example CSV for the operator to fill in.
func WriteTemplate() (path string, err error) {
	const permissions = os.FileMode(0o600)
	err = os.WriteFile(TemplateFilename, []byte(templateContent), permissions)
	if err != nil {
		return "", fmt.Errorf("writing template file: %w", err)
	}
	return TemplateFilename, nil
}
