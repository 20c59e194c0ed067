/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "docqa/cmd"

func main() {
	cmd.Execute()
}
