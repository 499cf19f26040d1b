// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/peerwire"
)

// CommandWidth is the fixed on-wire size of a command name.
const CommandWidth = 12

// CommandString names a message type inside the envelope. On the wire it
// occupies exactly CommandWidth bytes, right-padded with nulls. Encoding a
// name longer than that is an error, never a truncation.
type CommandString string

const (
	CmdVersion     CommandString = "version"
	CmdVerack      CommandString = "verack"
	CmdAddr        CommandString = "addr"
	CmdInv         CommandString = "inv"
	CmdGetData     CommandString = "getdata"
	CmdNotFound    CommandString = "notfound"
	CmdGetBlocks   CommandString = "getblocks"
	CmdGetHeaders  CommandString = "getheaders"
	CmdHeaders     CommandString = "headers"
	CmdSendHeaders CommandString = "sendheaders"
	CmdGetAddr     CommandString = "getaddr"
	CmdMempool     CommandString = "mempool"
	CmdPing        CommandString = "ping"
	CmdPong        CommandString = "pong"
	CmdReject      CommandString = "reject"
	CmdBlock       CommandString = "block"
	CmdTx          CommandString = "tx"
	CmdFeeFilter   CommandString = "feefilter"
)

var knownCommands = map[CommandString]struct{}{
	CmdVersion: {}, CmdVerack: {}, CmdAddr: {}, CmdInv: {},
	CmdGetData: {}, CmdNotFound: {}, CmdGetBlocks: {}, CmdGetHeaders: {},
	CmdHeaders: {}, CmdSendHeaders: {}, CmdGetAddr: {}, CmdMempool: {},
	CmdPing: {}, CmdPong: {}, CmdReject: {}, CmdBlock: {}, CmdTx: {},
	CmdFeeFilter: {},
}

// ParseCommand checks s against the protocol's message table.
func ParseCommand(s string) (CommandString, error) {
	c := CommandString(s)
	if _, ok := knownCommands[c]; !ok {
		return "", peerwire.UnknownCommandError(s)
	}
	return c, nil
}

func (c CommandString) String() string { return string(c) }

func (c CommandString) Encode(w io.Writer) (int, error) {
	if len(c) > CommandWidth {
		return 0, errors.Errorf("message: command %q longer than %d bytes", string(c), CommandWidth)
	}
	var buf [CommandWidth]byte
	copy(buf[:], c)
	return peerwire.WriteBytes(w, buf[:])
}

// Decode reads CommandWidth bytes and strips the trailing null padding.
func (c *CommandString) Decode(r io.Reader) error {
	var buf [CommandWidth]byte
	if err := peerwire.ReadFull(r, buf[:]); err != nil {
		return err
	}
	end := CommandWidth
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	*c = CommandString(buf[:end])
	return nil
}
