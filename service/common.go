package service

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm prints prompt and reports whether the operator answered y or Y.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
