// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/packd/fault"
	"github.com/bitmark-inc/packd/keypair"
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		_ = terminal.Restore(0, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "pack-cli: ")

	return passwordConsole, 0, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	password, err := console.ReadPassword(prompt)
	if nil != err {
		fmt.Printf("Get password fail: %s\n", err)
		return "", err
	}
	return password, nil
}

// new password entered twice
func promptPasswordReader() (string, error) {
	password, err := readPassword(fmt.Sprintf("Set identity password(length >= %d): ", keypair.MinimumPasswordLength))
	if nil != err {
		return "", err
	}

	if len(password) < keypair.MinimumPasswordLength {
		return "", fault.PasswordTooShort
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", fault.PasswordMismatch
	}

	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

func promptCheckPasswordReader() (string, error) {
	return readPassword("password: ")
}
