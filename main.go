package main

import (
	"fmt"
	"os"

	"pekscan/utils"
)

func main() {
	utils.InitLogger(utils.INFO)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "analyze":
		analyzeCmd(os.Args[2:])
	case "scan":
		scanCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	default:
		fmt.Println("Choose a valid command")
		printUsage()
	}
}

func printUsage() {
	fmt.Println("usage: pekscan <command> [args]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  analyze <file> [-export out.csv]   analyze one peak file")
	fmt.Println("  scan [dir]                         find Premiere-related files")
	fmt.Println("  batch <dir>                        analyze every .pek under dir")
}
