/*
Package lychee turns a free-form, possibly ungrammatical prompt into a
structured thinking plan, optionally asking clarifying questions first,
while remaining fully stateless on the server side.

All conversation progress is serialized into a state object that the client
stores and echoes back on every call; the server holds no session table.
The engine runs a three-stage pipeline (normalize, decide clarification,
synthesize), each stage rendering a prompt template, calling an opaque text
generator, and parsing the semi-structured response into typed results.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/litchilabs/lychee"
		"github.com/litchilabs/lychee/pkg/adapters/gemini"
	)

	func main() {
		key, err := gemini.LoadAPIKey()
		if err != nil {
			log.Fatal(err)
		}

		eng, err := lychee.New(lychee.WithGenerator(gemini.New(key, "")))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		res, err := eng.ProcessInitial(ctx, "i want lern coding")
		if err != nil {
			log.Fatal(err)
		}

		if res.Clarification != nil {
			// Collect answers, then resume with the state we were handed.
			answers := []string{"Python", "two weeks"}
			res, err = eng.ProcessClarification(ctx, res.State, answers)
			if err != nil {
				log.Fatal(err)
			}
		}

		fmt.Println(res.Answer.Goal)
	}

Adapters under pkg/adapters expose the same engine over HTTP (chi), MCP, and
Gemini as the default generator backend.
*/
package lychee
