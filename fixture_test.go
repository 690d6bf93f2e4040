package skillsheet

// sampleSheet is a complete skill sheet in the default layout. The third
// project chunk has no title, the technologies list has a free-text line and
// the responsibility table has one short row.
const sampleSheet = `# HM スキルシート

## 📋 基本情報

| 項目 | 内容 |
|------|------|
| **氏名** | H.M |
| 年齢 | 35歳 |
| 最寄駅 | 東京駅 |

## 🎯 得意分野

- **Webアプリケーション開発**
- **クラウドインフラ構築**

### 得意言語

- Go
- Python

### 得意業務

- 要件定義
- 基本設計

## 💻 技術スキル

### 開発言語

| 言語 | 経験年数 |
|------|----------|
| Go | 5年 |
| Python | 3年 |

### フレームワーク

| フレームワーク | 経験年数 |
|----------------|----------|
| Gin | 3年 |

## 🌟 自己PR・備考

- 設計から運用まで一貫して担当
- チームの育成に注力

## 📈 職歴・プロジェクト経験（時系列順）

### 1. 株式会社サンプル（2021年4月～2024年3月）

**期間：** 2021年4月～2024年3月 | **業種：** 金融 | **雇用形態：** 正社員
**チーム規模：** 10名

#### 使用技術

- **言語：** Go, Python
- **インフラ：** AWS
補足メモ

#### プロジェクト概要

決済基盤の刷新。
マイクロサービス化を推進。

#### 主な業務内容

- **API設計**
  - REST API の設計
  レビュー
- 運用改善

#### 習得スキル

- 分散システム設計
  - Saga パターン
- チームマネジメント

#### 成果・実績

- レイテンシを30%削減
- 障害件数を半減

---

### 2. 合同会社テスト（2019年4月～2021年3月）

**期間：** 2019年4月～2021年3月 | **業種：** 小売 | **雇用形態：** 契約社員
**チーム規模：** 5名

#### 使用技術

- **言語：** Java

---

メモ: タイトルなし

## 📊 担当領域

| 工程 | 1社目 | 2社目 |
|------|-------|-------|
| 要件定義 | ○ | ○ |
| 設計 | ○ |
| 実装 | ○ | ○ |

## 🎯 強み・特徴

1. **問題解決力**: 原因を素早く特定
2. **コミュニケーション**：関係者との調整

補足なし
`
