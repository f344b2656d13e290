/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/AvirFrog/fasta-parser/cmd/fastaparser/cmd"
)

func main() {
	cmd.Execute()
}
