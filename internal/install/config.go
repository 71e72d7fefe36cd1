// Handles setup actions (configuration templates)
package install

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mcaststats/internal/publisher"
	"mcaststats/internal/subscriber"
	"os"
	"strings"

	"golang.org/x/term"
)

const templateRoot string = "Config"

// Writes a publisher config template (same layout as ServerConfig.xml)
func CreatePublisherTemplateConfig(filepath string) (err error) {
	newCfg := publisher.XMLConfig{
		MulticastAddress: "239.0.0.222",
		Port:             "2222",
		MinValue:         "1",
		MaxValue:         "100",
	}
	err = writeTemplate(filepath, newCfg)
	return
}

// Writes a subscriber config template (same layout as ClientConfig.xml)
func CreateSubscriberTemplateConfig(filepath string) (err error) {
	newCfg := subscriber.XMLConfig{
		MulticastAddress: "239.0.0.222",
		Port:             "2222",
	}
	err = writeTemplate(filepath, newCfg)
	return
}

// Encodes any config struct under the <Config> root
func EncodeTemplate(w io.Writer, cfg any) (err error) {
	_, err = io.WriteString(w, xml.Header)
	if err != nil {
		return
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	err = encoder.EncodeElement(cfg, xml.StartElement{Name: xml.Name{Local: templateRoot}})
	if err != nil {
		err = fmt.Errorf("error marshaling new config: %w", err)
		return
	}
	err = encoder.Close()
	if err != nil {
		return
	}

	_, err = io.WriteString(w, "\n")
	return
}

func writeTemplate(filepath string, cfg any) (err error) {
	if filepath == "" {
		err = fmt.Errorf("specify template file path via the --config/-c arguments")
		return
	}

	_, err = os.Stat(filepath)
	if err == nil {
		// Only ask if in terminal
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			err = fmt.Errorf("refusing to overwrite existing file '%s'", filepath)
			return
		}
		if !confirm(os.Stdin, os.Stdout, fmt.Sprintf("File '%s' exists, overwrite? (yes/no): ", filepath)) {
			err = fmt.Errorf("aborted, existing file '%s' left unchanged", filepath)
			return
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return
	}

	newConfFile, err := os.OpenFile(filepath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer newConfFile.Close()

	err = EncodeTemplate(newConfFile, cfg)
	if err != nil {
		err = fmt.Errorf("failed to write config to file: %w", err)
		return
	}

	fmt.Printf("Successfully wrote template configuration '%s'\n", filepath)
	return
}

// Prompts and reads a yes/no answer
func confirm(in io.Reader, out io.Writer, prompt string) (yes bool) {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	yes = strings.ToLower(input) == "yes"
	return
}
