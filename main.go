// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"cidl/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the cidl layout REPL, %s!\n", currentUser.Username)
	fmt.Println("Type a C type spelling such as u64, u8[32] or u32[N]; :quit exits.")
	repl.Start(os.Stdin, os.Stdout)
}
