// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/models"
)

const (
	refreshInterval = 2 * time.Second
	statusLifetime  = 2 * time.Second
)

type appModel struct {
	ctx       context.Context
	documents service.DeviceDocumentsService
	buildInfo models.AppBuildInfo

	list     listModel
	requests requestModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.DocumentIdentifier
	showBuildInfo bool

	quit bool
}

func newAppModel(ctx context.Context, documents service.DeviceDocumentsService, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		documents: documents,
		buildInfo: buildInfo,
		list:      newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadList(), m.cmdWaitRequest(), cmdTick(), m.list.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tickMsg:
		connected := m.documents.Connected()
		if m.list.connected && !connected {
			// the device drops unanswered requests when the session ends
			m.requests.reset()
		}
		m.list.connected = connected
		return m, tea.Batch(m.cmdLoadList(), cmdTick())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		if msg.err != nil {
			m.list.loading = false
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case accessRequestMsg:
		m.requests.push(msg.request)
		return m, m.cmdWaitRequest()
	case answeredMsg:
		m.requests.answering = false
		m.requests.remove(msg.metadata.ID)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.granted {
			m.list.status = "Access granted to " + msg.metadata.Name
		} else {
			m.list.status = "Access denied to " + msg.metadata.Name
		}
		return m, cmdClearStatus()
	case itemDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.status = "Deleted " + msg.name
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			if m.pendingDelete == "" {
				return m, nil
			}
			return m, m.cmdDelete(m.pendingDelete, m.confirm.message)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	// an open access request takes the keyboard until answered
	if req, ok := m.requests.head(); ok {
		if m.requests.answering {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.grant):
			m.requests.answering = true
			return m, m.cmdAnswer(req.Metadata, true)
		case key.Matches(msg, keys.deny):
			m.requests.answering = true
			return m, m.cmdAnswer(req.Metadata, false)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoadList()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m, cmdCopy(item.ID.String())
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.showConfirm = true
			m.confirm.message = item.Name
			m.pendingDelete = item.ID
		}
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	body := m.list.View()
	if prompt := m.requests.View(); prompt != "" {
		body += "\n\n" + prompt
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) cmdLoadList() tea.Cmd {
	return func() tea.Msg {
		items, err := m.documents.ListDocuments(m.ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

// cmdWaitRequest delivers the next access request. It is re-issued after
// every delivered request.
func (m appModel) cmdWaitRequest() tea.Cmd {
	requests := m.documents.AccessRequests()
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case req, ok := <-requests:
			if !ok {
				return nil
			}
			return accessRequestMsg{request: req}
		}
	}
}

func (m appModel) cmdAnswer(md models.DocumentMetadata, grant bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if grant {
			err = m.documents.GrantAccess(m.ctx, md.ID)
		} else {
			err = m.documents.DenyAccess(m.ctx, md.ID)
		}
		return answeredMsg{metadata: md, granted: grant, err: err}
	}
}

func (m appModel) cmdDelete(id models.DocumentIdentifier, name string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{name: name, err: m.documents.DeleteDocument(m.ctx, id)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
