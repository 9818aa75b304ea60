// Command dawgc builds a dawg dictionary from a sorted key/value stream and
// answers point lookups against it. It exists for manual inspection of the
// container format, not as a supported interface of the dawg package.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jus1d/dawgdict"
)

func main() {
	buildFlag := flag.String("build", "", "read tab-separated key\\tvalue lines from stdin and write a dictionary to this path")
	queryFlag := flag.String("query", "", "path of a dictionary to query")
	flag.Parse()

	switch {
	case *buildFlag != "":
		if err := build(*buildFlag); err != nil {
			log.Fatalf("dawgc: %v", err)
		}
	case *queryFlag != "":
		if err := query(*queryFlag, flag.Args()); err != nil {
			log.Fatalf("dawgc: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: dawgc -build <path> < keys.tsv")
		fmt.Fprintln(os.Stderr, "       dawgc -query <path> key [key ...]")
		os.Exit(2)
	}
}

func build(path string) error {
	builder := dawg.NewDawgBuilder()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, rawValue, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("malformed line %q, want key\\tvalue", line)
		}
		value, err := strconv.ParseInt(rawValue, 10, 32)
		if err != nil {
			return fmt.Errorf("parsing value for key %q: %w", key, err)
		}
		if err := builder.Insert(key, int32(value)); err != nil {
			return fmt.Errorf("inserting key %q: %w", key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	dic, _, err := dawg.BuildDictionary(builder.Finish())
	if err != nil {
		return fmt.Errorf("compiling dictionary: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := dic.Write(w); err != nil {
		return err
	}
	return w.Flush()
}

func query(path string, keys []string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var dic dawg.Dictionary
	if err := dic.Read(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, key := range keys {
		if value, ok := dic.Find(key); ok {
			fmt.Printf("%s\t%d\n", key, value)
		} else {
			fmt.Printf("%s\tmiss\n", key)
		}
	}
	return nil
}
